package notification

// Op names one of the three Notifier operations in a recorded call.
type Op string

const (
	OpEmail    Op = "email"
	OpSms      Op = "sms"
	OpActivity Op = "activity"
)

// Call is one recorded Notifier invocation. Only the fields relevant to the
// operation are populated.
type Call struct {
	Op        Op
	Recipient string
	Subject   string
	Body      string
	Phone     string
	AccountID string
	Message   string
}

// Recorder is a Notifier double that records every call in invocation order.
// Interaction tests read the call log instead of relying on a mock framework;
// the zero value is ready to use.
//
// Recorder is not safe for concurrent use; it is meant for single-threaded
// test scenarios.
type Recorder struct {
	calls []Call
}

func (r *Recorder) SendEmail(recipient, subject, body string) {
	r.calls = append(r.calls, Call{Op: OpEmail, Recipient: recipient, Subject: subject, Body: body})
}

func (r *Recorder) SendSms(phone, body string) {
	r.calls = append(r.calls, Call{Op: OpSms, Phone: phone, Body: body})
}

func (r *Recorder) LogActivity(accountID, message string) {
	r.calls = append(r.calls, Call{Op: OpActivity, AccountID: accountID, Message: message})
}

// Calls returns a copy of the full ordered call log.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsTo returns the ordered subsequence of calls for one operation.
func (r *Recorder) CallsTo(op Op) []Call {
	var out []Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count reports how many times the given operation was invoked.
func (r *Recorder) Count(op Op) int {
	return len(r.CallsTo(op))
}

// Reset clears the call log so earlier interactions stop counting.
func (r *Recorder) Reset() {
	r.calls = nil
}
