package version

const Value = "1.0.0"

// Engine identifies the scoring engine in report metadata.
func Engine() string {
	return "tenancyscore/" + Value
}
