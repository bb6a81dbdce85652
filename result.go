package nanobanana

// Part is one unit of a model response, either a TextPart or an ImagePart.
type Part interface {
	isPart()
}

// TextPart carries textual commentary from the model.
type TextPart struct {
	Text string
}

// ImagePart carries one generated image as inline data.
type ImagePart struct {
	// MIMEType of the generated image
	MIMEType string

	// Data is the base64 encoded image payload
	Data string
}

func (TextPart) isPart()  {}
func (ImagePart) isPart() {}

// Response is the decoded content of a generation call, parts in the order
// the model returned them.
type Response struct {
	Parts []Part

	// ModelVersion reported by the service, if any
	ModelVersion string

	// UsageMetadata contains token/billing information
	UsageMetadata *UsageMetadata
}

// ImageCount returns the number of image parts.
func (r *Response) ImageCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, p := range r.Parts {
		if _, ok := p.(ImagePart); ok {
			n++
		}
	}
	return n
}

// UsageMetadata contains usage information for billing and monitoring.
type UsageMetadata struct {
	PromptTokens     int
	CandidatesTokens int
	TotalTokens      int
}

// Result describes the files written for a successful invocation.
// Nil pointers serialize as null.
type Result struct {
	Files       []string `json:"files"`
	Model       string   `json:"model"`
	Text        *string  `json:"text"`
	AspectRatio *string  `json:"aspect_ratio"`
	Size        *string  `json:"size"`
}

// Report is the single line printed at the end of an invocation. Build it
// with Success or Failure.
type Report struct {
	OK    bool    `json:"ok"`
	Data  *Result `json:"data,omitempty"`
	Error string  `json:"error,omitempty"`
}

// Success wraps a result.
func Success(r *Result) Report {
	if r.Files == nil {
		r.Files = []string{}
	}
	return Report{OK: true, Data: r}
}

// Failure wraps an error message.
func Failure(err error) Report {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Report{OK: false, Error: msg}
}

// ExitCode maps the report to the process exit status.
func (r Report) ExitCode() int {
	if r.OK {
		return 0
	}
	return 1
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
