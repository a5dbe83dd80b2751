package validate

// Operator-facing messages
const (
	MsgGenerating  = "Generating component: %s"
	MsgArea        = "Functional area: %s"
	MsgJavaPackage = "Java package: %s"

	MsgErrIdentifier     = "ERROR: The package name (%s) is not valid for Java."
	MsgErrIdentifierHint = "It must start with a letter or underscore and contain only letters, digits and underscores."
	MsgErrPortRange      = "ERROR: The port must be between %d and %d."
	MsgErrPortNumber     = "ERROR: The port must be a valid number."
)
