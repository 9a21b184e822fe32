package handler

type ContextKey string

var (
	JobDocumentCtx ContextKey = "jobDocument"
	ShiftNameCtx   ContextKey = "shiftName"
)
