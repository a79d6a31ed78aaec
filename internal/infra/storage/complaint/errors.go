package complaint

import "errors"

var (
	// ErrComplaintNotFound возвращается, когда жалоба не найдена
	ErrComplaintNotFound = errors.New("complaint.repository: complaint not found")
)
