package ui

const (
	MsgConfiguring = "=== Configuring project ==="
	MsgGenerated   = "=== Project generated successfully ==="
	MsgName        = "Name: %s"
	MsgDirectory   = "Directory: %s"
	MsgPackage     = "Package: %s"
	MsgMaven       = "Maven: %s"
	MsgNextSteps   = "Next steps:"
	MsgRemoved     = "%s: %s"
)

// NextSteps are the commands suggested once the project exists
var NextSteps = []string{
	"cd %s",
	"mvn clean install",
	"mvn spring-boot:run -Dspring-boot.run.profiles=local",
}
