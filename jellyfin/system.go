package jellyfin

import (
	"context"
	"net/http"
)

// PublicSystemInfo fetches the anonymous server identity from
// /System/Info/Public. It doubles as an explicit reachability check; Connect
// itself never touches the network.
func (c *Client) PublicSystemInfo(ctx context.Context) (PublicServerInfo, error) {
	var info PublicServerInfo
	if err := c.doJSON(ctx, http.MethodGet, "/System/Info/Public", nil, nil, anonymousAuth, &info); err != nil {
		return PublicServerInfo{}, err
	}
	return info, nil
}

// Sessions lists the active sessions on the server.
func (c *Client) Sessions(ctx context.Context) ([]SessionInfo, error) {
	var sessions []SessionInfo
	if err := c.doJSON(ctx, http.MethodGet, "/Sessions", nil, nil, sessionAuth, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
