package jellyfin

import "time"

// User is the Jellyfin user DTO returned by the /Users endpoints.
type User struct {
	Name                      string            `json:"Name"`
	ServerID                  string            `json:"ServerId"`
	ServerName                string            `json:"ServerName,omitempty"`
	ID                        string            `json:"Id"`
	PrimaryImageTag           string            `json:"PrimaryImageTag,omitempty"`
	HasPassword               bool              `json:"HasPassword"`
	HasConfiguredPassword     bool              `json:"HasConfiguredPassword"`
	HasConfiguredEasyPassword bool              `json:"HasConfiguredEasyPassword"`
	EnableAutoLogin           bool              `json:"EnableAutoLogin"`
	LastLoginDate             *time.Time        `json:"LastLoginDate,omitempty"`
	LastActivityDate          *time.Time        `json:"LastActivityDate,omitempty"`
	Configuration             UserConfiguration `json:"Configuration"`
	Policy                    UserPolicy        `json:"Policy"`
	PrimaryImageAspectRatio   float64           `json:"PrimaryImageAspectRatio,omitempty"`
}

// UserConfiguration holds per-user display and playback preferences.
type UserConfiguration struct {
	AudioLanguagePreference    string       `json:"AudioLanguagePreference,omitempty"`
	PlayDefaultAudioTrack      bool         `json:"PlayDefaultAudioTrack"`
	SubtitleLanguagePreference string       `json:"SubtitleLanguagePreference"`
	DisplayMissingEpisodes     bool         `json:"DisplayMissingEpisodes"`
	GroupedFolders             []string     `json:"GroupedFolders"`
	SubtitleMode               SubtitleMode `json:"SubtitleMode"`
	DisplayCollectionsView     bool         `json:"DisplayCollectionsView"`
	EnableLocalPassword        bool         `json:"EnableLocalPassword"`
	OrderedViews               []string     `json:"OrderedViews"`
	LatestItemsExcludes        []string     `json:"LatestItemsExcludes"`
	MyMediaExcludes            []string     `json:"MyMediaExcludes"`
	HidePlayedInLatest         bool         `json:"HidePlayedInLatest"`
	RememberAudioSelections    bool         `json:"RememberAudioSelections"`
	RememberSubtitleSelections bool         `json:"RememberSubtitleSelections"`
	EnableNextEpisodeAutoPlay  bool         `json:"EnableNextEpisodeAutoPlay"`
}

// UserPolicy captures the server-side permission set for a user.
type UserPolicy struct {
	IsAdministrator                  bool             `json:"IsAdministrator"`
	IsHidden                         bool             `json:"IsHidden"`
	IsDisabled                       bool             `json:"IsDisabled"`
	MaxParentalRating                *int64           `json:"MaxParentalRating,omitempty"`
	BlockedTags                      []string         `json:"BlockedTags"`
	EnableUserPreferenceAccess       bool             `json:"EnableUserPreferenceAccess"`
	AccessSchedules                  []AccessSchedule `json:"AccessSchedules"`
	BlockUnratedItems                []string         `json:"BlockUnratedItems"`
	EnableRemoteControlOfOtherUsers  bool             `json:"EnableRemoteControlOfOtherUsers"`
	EnableSharedDeviceControl        bool             `json:"EnableSharedDeviceControl"`
	EnableRemoteAccess               bool             `json:"EnableRemoteAccess"`
	EnableLiveTvManagement           bool             `json:"EnableLiveTvManagement"`
	EnableLiveTvAccess               bool             `json:"EnableLiveTvAccess"`
	EnableMediaPlayback              bool             `json:"EnableMediaPlayback"`
	EnableAudioPlaybackTranscoding   bool             `json:"EnableAudioPlaybackTranscoding"`
	EnableVideoPlaybackTranscoding   bool             `json:"EnableVideoPlaybackTranscoding"`
	EnablePlaybackRemuxing           bool             `json:"EnablePlaybackRemuxing"`
	ForceRemoteSourceTranscoding     bool             `json:"ForceRemoteSourceTranscoding"`
	EnableContentDeletion            bool             `json:"EnableContentDeletion"`
	EnableContentDeletionFromFolders []string         `json:"EnableContentDeletionFromFolders"`
	EnableContentDownloading         bool             `json:"EnableContentDownloading"`
	EnableSyncTranscoding            bool             `json:"EnableSyncTranscoding"`
	EnableMediaConversion            bool             `json:"EnableMediaConversion"`
	EnabledDevices                   []string         `json:"EnabledDevices"`
	EnableAllDevices                 bool             `json:"EnableAllDevices"`
	EnabledChannels                  []string         `json:"EnabledChannels"`
	EnableAllChannels                bool             `json:"EnableAllChannels"`
	EnabledFolders                   []string         `json:"EnabledFolders"`
	EnableAllFolders                 bool             `json:"EnableAllFolders"`
	InvalidLoginAttemptCount         int64            `json:"InvalidLoginAttemptCount"`
	LoginAttemptsBeforeLockout       int64            `json:"LoginAttemptsBeforeLockout"`
	MaxActiveSessions                int64            `json:"MaxActiveSessions"`
	EnablePublicSharing              bool             `json:"EnablePublicSharing"`
	BlockedMediaFolders              []string         `json:"BlockedMediaFolders"`
	BlockedChannels                  []string         `json:"BlockedChannels"`
	RemoteClientBitrateLimit         int64            `json:"RemoteClientBitrateLimit"`
	AuthenticationProviderID         string           `json:"AuthenticationProviderId"`
	PasswordResetProviderID          string           `json:"PasswordResetProviderId"`
	SyncPlayAccess                   string           `json:"SyncPlayAccess"`
}

// AccessSchedule restricts when a user may access the server.
type AccessSchedule struct {
	UserID    string  `json:"UserId"`
	DayOfWeek string  `json:"DayOfWeek"`
	StartHour float64 `json:"StartHour"`
	EndHour   float64 `json:"EndHour"`
}

// AuthenticationResult is the payload returned by the authenticate endpoints.
type AuthenticationResult struct {
	User        User        `json:"User"`
	SessionInfo SessionInfo `json:"SessionInfo"`
	AccessToken string      `json:"AccessToken"`
	ServerID    string      `json:"ServerId"`
}

// PlayState describes the playback position of a session.
type PlayState struct {
	CanSeek       bool   `json:"CanSeek"`
	IsPaused      bool   `json:"IsPaused"`
	IsMuted       bool   `json:"IsMuted"`
	RepeatMode    string `json:"RepeatMode"`
	PlaybackOrder string `json:"PlaybackOrder,omitempty"`
}

// SessionInfo describes an active server session.
type SessionInfo struct {
	PlayState          PlayState  `json:"PlayState"`
	RemoteEndPoint     string     `json:"RemoteEndPoint,omitempty"`
	ID                 string     `json:"Id"`
	UserID             string     `json:"UserId"`
	UserName           string     `json:"UserName"`
	Client             string     `json:"Client"`
	LastActivityDate   *time.Time `json:"LastActivityDate,omitempty"`
	DeviceName         string     `json:"DeviceName"`
	DeviceID           string     `json:"DeviceId"`
	ApplicationVersion string     `json:"ApplicationVersion"`
	IsActive           bool       `json:"IsActive"`
}

// PublicServerInfo is the anonymous /System/Info/Public payload.
type PublicServerInfo struct {
	LocalAddress           string `json:"LocalAddress"`
	ServerName             string `json:"ServerName"`
	Version                string `json:"Version"`
	ProductName            string `json:"ProductName"`
	OperatingSystem        string `json:"OperatingSystem"`
	ID                     string `json:"Id"`
	StartupWizardCompleted bool   `json:"StartupWizardCompleted"`
}
