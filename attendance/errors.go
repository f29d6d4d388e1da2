package attendance

import "errors"

// Kind buckets every core failure for HTTP status mapping. Codes stay
// distinct so the client can tell DUPLICATE_SESSION from ALREADY_MARKED from
// a genuine server error; nothing here is ever collapsed into a 500.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindPermission Kind = "PERMISSION"
	KindTemporal   Kind = "TEMPORAL"
	KindConflict   Kind = "CONFLICT"
	KindNotFound   Kind = "NOT_FOUND"
)

// Client-visible error codes.
const (
	CodeMissingFields         = "MISSING_FIELDS"
	CodeInvalidDate           = "INVALID_DATE"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodeEmptyEntries          = "EMPTY_ENTRIES"
	CodeDuplicateStudent      = "DUPLICATE_STUDENT"
	CodeStudentNotInRoster    = "STUDENT_NOT_IN_ROSTER"
	CodeRecordNotFound        = "RECORD_NOT_FOUND"
	CodeSlotNotFound          = "SLOT_NOT_FOUND"
	CodeTimetableNotFound     = "TIMETABLE_NOT_FOUND"
	CodeTimetableNotPublished = "TIMETABLE_NOT_PUBLISHED"
	CodeNotSubjectTeacher     = "NOT_SUBJECT_TEACHER"
	CodeDateDayMismatch       = "DATE_DAY_MISMATCH"
	CodePastDateNotAllowed    = "PAST_DATE_NOT_ALLOWED"
	CodeOnlyTodayAllowed      = "ONLY_TODAY_ALLOWED"
	CodeLectureNotStarted     = "LECTURE_NOT_STARTED"
	CodeLectureEnded          = "LECTURE_ENDED"
	CodeDuplicateSession      = "DUPLICATE_SESSION"
	CodeSessionNotFound       = "SESSION_NOT_FOUND"
	CodeSessionClosed         = "SESSION_CLOSED"
	CodeSessionAlreadyClosed  = "SESSION_ALREADY_CLOSED"
	CodeNotSessionOwner       = "NOT_SESSION_OWNER"
	CodeAlreadyMarked         = "ALREADY_MARKED"
	CodeNotYetMarked          = "NOT_YET_MARKED"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// AsError unwraps err into a core *Error when it carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
