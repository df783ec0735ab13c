package models

// SiteStatus classifies the outcome of checking one URL.
type SiteStatus int

const (
	Normal SiteStatus = iota
	Moved
	Unavailable
)

func (s SiteStatus) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Moved:
		return "Moved"
	case Unavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}

// SubscribedURL is one subscribed entry from the planet config.ini.
type SubscribedURL struct {
	Name        string // ex. MozTW YouTube 頻道
	Description string // ex. Mozilla 與 MozTW 社群影片
	BlogName    string // ex. MozTW YouTube
	Icon        string // ex. default
	TrueLink    string // ex. https://www.youtube.com/moztw
}

// CheckResult is the classified outcome of a single request attempt.
// A redirect target exists only for Moved results, so the fields are
// unexported and values are built through the constructors below.
type CheckResult struct {
	status      SiteStatus
	redirectURL string
}

func NormalResult() CheckResult {
	return CheckResult{status: Normal}
}

func MovedResult(redirectURL string) CheckResult {
	return CheckResult{status: Moved, redirectURL: redirectURL}
}

func UnavailableResult() CheckResult {
	return CheckResult{status: Unavailable}
}

func (r CheckResult) Status() SiteStatus {
	return r.status
}

// Redirect returns the URL the site resolved to after redirects.
// It reports false unless the status is Moved.
func (r CheckResult) Redirect() (string, bool) {
	return r.redirectURL, r.status == Moved
}
