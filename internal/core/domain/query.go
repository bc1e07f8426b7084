package domain

// QueryResult is the structured outcome of processing one query.
// Created fresh per call and not retained by the processor.
type QueryResult struct {
	// Intent is the selected intent name, or "unknown".
	Intent string `json:"intent"`

	// Confidence is the selection score in [0,1].
	Confidence float64 `json:"confidence"`

	// Entities maps each slot name declared by the selected intent to its
	// extracted value. Slots that could not be filled are present with an
	// empty string; general_chat has an empty map.
	Entities map[string]string `json:"entities"`

	// Context is a snapshot of the recent-query history at call time.
	Context []string `json:"context"`

	// OriginalQuery is the raw query string as submitted, not the
	// normalised form.
	OriginalQuery string `json:"original_query"`
}

// ActionResult is what the dispatcher reports back to the caller after
// acting on a QueryResult.
type ActionResult struct {
	// Success reports whether the action completed.
	Success bool `json:"success"`

	// Message is the user-facing reply, also sent to speech synthesis.
	Message string `json:"message"`

	// Data carries handler-specific payload, if any.
	Data map[string]any `json:"data,omitempty"`

	// OperationID identifies this turn for auditing.
	OperationID string `json:"operation_id,omitempty"`
}

// AuthResult is the outcome of a face-authentication attempt.
type AuthResult struct {
	// Authenticated reports whether a known user was recognised.
	Authenticated bool `json:"authenticated"`

	// UserName is the recognised user, when authenticated.
	UserName string `json:"user_name,omitempty"`

	// Confidence is the recognition confidence in [0,1].
	Confidence float64 `json:"confidence"`
}
