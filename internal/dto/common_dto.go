package dto

// Result is the mutation response envelope. Soft failures (duplicates,
// missing records) come back with Success=false and a human-readable Error so
// the UI can show an informational notice instead of a fatal one.
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(data interface{}) Result { return Result{Success: true, Data: data} }

func Fail(msg string) Result { return Result{Success: false, Error: msg} }
