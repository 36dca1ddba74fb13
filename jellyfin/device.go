package jellyfin

import (
	"crypto/md5"
	"fmt"
	"os"
	"strings"
)

const (
	defaultClientName    = "jelly"
	defaultClientVersion = "1.0.0"
)

// DeviceProfile identifies this client to the server through the MediaBrowser
// authorization header. Zero fields are filled in from defaults at
// construction time.
type DeviceProfile struct {
	// Client is the application name reported to the server.
	Client string
	// Device is the device name, typically the local hostname.
	Device string
	// DeviceID uniquely identifies this device to the server.
	DeviceID string
	// Version is the application version string.
	Version string
}

func (p DeviceProfile) withDefaults() DeviceProfile {
	if strings.TrimSpace(p.Client) == "" {
		p.Client = defaultClientName
	}
	if strings.TrimSpace(p.Device) == "" {
		p.Device = deviceName()
	}
	if strings.TrimSpace(p.DeviceID) == "" {
		p.DeviceID = fmt.Sprintf("%x", md5.Sum([]byte(p.Device)))
	}
	if strings.TrimSpace(p.Version) == "" {
		p.Version = defaultClientVersion
	}
	return p
}

// authHeader renders the X-Emby-Authorization value for the given token. The
// token is empty for anonymous requests such as the authenticate call itself.
func (p DeviceProfile) authHeader(token string) string {
	return fmt.Sprintf(
		"MediaBrowser Client=%q, Device=%q, DeviceId=%q, Version=%q, Token=%q",
		p.Client, p.Device, p.DeviceID, p.Version, token,
	)
}

func deviceName() string {
	host, err := os.Hostname()
	if err != nil || strings.TrimSpace(host) == "" {
		return "unknown"
	}
	return strings.ReplaceAll(host, " ", "_")
}
