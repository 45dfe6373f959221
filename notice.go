package sketch

import "fmt"

// Level is the severity of a notice.
type Level uint8

// Notice levels.
const (
	LevelInfo Level = iota
	LevelWarn
)

// String returns "info" or "warn".
func (l Level) String() string {
	if l == LevelWarn {
		return "warn"
	}
	return "info"
}

// NoticeKind classifies a notice.
type NoticeKind uint8

// Notice kinds.
const (
	NoticeSolePage NoticeKind = iota + 1
	NoticeNotFound
	NoticeNameExists
	NoticeEmptyName
	NoticeOutOfRange
	NoticeDecodeFailed
	NoticeInvalidSettings
	NoticeBusy
	NoticeSaved
)

var noticeKindNames = map[NoticeKind]string{
	NoticeSolePage:        "sole-page",
	NoticeNotFound:        "not-found",
	NoticeNameExists:      "name-exists",
	NoticeEmptyName:       "empty-name",
	NoticeOutOfRange:      "out-of-range",
	NoticeDecodeFailed:    "decode-failed",
	NoticeInvalidSettings: "invalid-settings",
	NoticeBusy:            "busy",
	NoticeSaved:           "saved",
}

func (k NoticeKind) String() string {
	if s, ok := noticeKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("NoticeKind(%d)", k)
}

// Notice is a message for the user. Refused operations report through
// notices instead of returning errors from Dispatch.
type Notice struct {
	Level   Level
	Kind    NoticeKind
	Message string
	// Err is the refusal, if any. It matches the package sentinels with
	// errors.Is.
	Err error
}

func (n Notice) String() string {
	return fmt.Sprintf("%s %s: %s", n.Level, n.Kind, n.Message)
}

// Notifier receives notices. It is called with the session lock held and
// must not call back into the session.
type Notifier func(Notice)

func (s *Session) notify(n Notice) {
	lg := Logger().With("kind", n.Kind.String())
	if n.Err != nil {
		lg = lg.With("err", n.Err)
	}
	if n.Level == LevelWarn {
		lg.Warn(n.Message)
	} else {
		lg.Info(n.Message)
	}
	if s.opts.notify != nil {
		s.opts.notify(n)
	}
}

// refuse reports err as a warning notice of the given kind.
func (s *Session) refuse(kind NoticeKind, msg string, err error) {
	s.notify(Notice{Level: LevelWarn, Kind: kind, Message: msg, Err: err})
}
