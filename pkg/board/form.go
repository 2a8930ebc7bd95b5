package board

// FormMode is the create/edit form's lifecycle state.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
	FormSubmitting
)

// Form owns the create/edit form state: Closed -> Open(create|edit) ->
// Submitting -> Closed on success, or back to Open with the error message
// retained when validation or the server rejects the submission.
type Form struct {
	mode     FormMode
	openMode FormMode // FormCreate or FormEdit while submitting
	editing  *Post

	Title     string
	Body      string
	Category  Category
	TagsInput string

	errMsg string
}

// Mode returns the current lifecycle state.
func (f *Form) Mode() FormMode { return f.mode }

// IsOpen reports whether the form is visible (including while submitting).
func (f *Form) IsOpen() bool { return f.mode != FormClosed }

// IsSubmitting reports whether a mutation is in flight.
func (f *Form) IsSubmitting() bool { return f.mode == FormSubmitting }

// Editing returns the post being edited, or nil in create mode.
func (f *Form) Editing() *Post { return f.editing }

// Err returns the retained validation or server error message.
func (f *Form) Err() string { return f.errMsg }

// OpenCreate opens an empty form for a new post.
func (f *Form) OpenCreate() {
	*f = Form{mode: FormCreate, Category: CategoryFree}
}

// OpenEdit opens the form pre-filled from an existing post.
func (f *Form) OpenEdit(post Post) {
	*f = Form{
		mode:      FormEdit,
		editing:   &post,
		Title:     post.Title,
		Body:      post.Body,
		Category:  post.Category,
		TagsInput: JoinTags(post.Tags),
	}
}

// Close discards the form state.
func (f *Form) Close() {
	*f = Form{}
}

// Submit validates the current values. On success the form moves to
// Submitting and the normalized payload is returned for dispatch; on
// failure the form stays open with the message retained.
func (f *Form) Submit() (PostInput, bool) {
	if f.mode != FormCreate && f.mode != FormEdit {
		return PostInput{}, false
	}
	f.errMsg = ""

	input, err := Validate(f.Title, f.Body, f.Category, f.TagsInput)
	if err != nil {
		f.errMsg = err.Error()
		return PostInput{}, false
	}

	f.openMode = f.mode
	f.mode = FormSubmitting
	return input, true
}

// SubmitSucceeded closes the form after a successful mutation.
func (f *Form) SubmitSucceeded() {
	f.Close()
}

// SubmitFailed reopens the form with the server-reported message so the
// user can correct and resubmit.
func (f *Form) SubmitFailed(msg string) {
	if f.mode != FormSubmitting {
		return
	}
	f.mode = f.openMode
	f.errMsg = msg
}
