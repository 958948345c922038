// version.go
package version

import "fmt"

// AppName holds the name of the application
var AppName = "go-api-sdk-mondo"

// Version holds the current version of the application
var Version = "0.1.0"

// ClientName identifies this SDK in the Mondo "client" request header.
const ClientName = "GoMondo"

// GetAppName returns the name of the application
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the application
func GetVersion() string {
	return Version
}

// GetUserAgentHeader returns the User-Agent value sent with every request.
func GetUserAgentHeader() string {
	return fmt.Sprintf("%s/%s", AppName, Version)
}

// GetClientHeader returns the value of the Mondo "client" request header, e.g. "GoMondo-v0.1.0".
func GetClientHeader() string {
	return fmt.Sprintf("%s-v%s", ClientName, Version)
}
