package models

// FetchResult is the outcome of one accepted load trigger: either Users
// (possibly empty) or a non-nil Err.
type FetchResult struct {
	Users []User
	Err   error
}

// Succeeded reports whether the fetch returned a user list.
func (r FetchResult) Succeeded() bool {
	return r.Err == nil
}
