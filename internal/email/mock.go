package email

import "sync"

// SentMail is one recorded message.
type SentMail struct {
	To      string
	Subject string
	Body    string
	Code    int
}

// MockProvider records messages instead of sending them. Used by the
// test suite and by deployments without an SMTP relay configured.
type MockProvider struct {
	mu   sync.Mutex
	sent []SentMail
	fail error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// FailWith makes every subsequent send return err without recording
// anything. Pass nil to restore normal delivery.
func (m *MockProvider) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

func (m *MockProvider) Send(to, subject, body string) error {
	return m.record(SentMail{To: to, Subject: subject, Body: body})
}

func (m *MockProvider) SendVerification(to string) error {
	return m.record(SentMail{To: to, Subject: verificationSubject})
}

func (m *MockProvider) SendResetCode(to string, code int) error {
	return m.record(SentMail{To: to, Subject: resetSubject, Code: code})
}

// Sent returns a copy of everything recorded so far.
func (m *MockProvider) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

// Reset clears the recording.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}

func (m *MockProvider) record(mail SentMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, mail)
	return nil
}
