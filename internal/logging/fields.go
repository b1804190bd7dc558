package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for pipeline run identifiers.
	FieldRunID = "run_id"
	// FieldSourceURL is the standardized structured logging key for guide source locators.
	FieldSourceURL = "source_url"
	// FieldFingerprint is the standardized structured logging key for document content fingerprints.
	FieldFingerprint = "fingerprint"
)
