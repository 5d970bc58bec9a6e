// Package blog is a small SQLite-backed blog post store whose write
// operations report their outcome as PostStatus values. Every PostStatus
// carries a declared message and kind, looked up through a status.Registry.
package blog

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/enumstatus/pkg/status"
)

// PostStatus is the outcome of a post write. The integer values are the
// status codes the store persists.
type PostStatus int

const (
	NewRecord PostStatus = iota
	UpdatedRecord
	UserInformationCouldNotBeVerified
	DeletedRecord
)

var postStatusNames = map[PostStatus]string{
	NewRecord:                         "NewRecord",
	UpdatedRecord:                     "UpdatedRecord",
	UserInformationCouldNotBeVerified: "UserInformationCouldNotBeVerified",
	DeletedRecord:                     "DeletedRecord",
}

func (s PostStatus) String() string {
	if name, ok := postStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PostStatus(%d)", int(s))
}

// Code returns the persisted status code.
func (s PostStatus) Code() int64 { return int64(s) }

// ErrUnknownCode is returned for status codes with no PostStatus.
var ErrUnknownCode = errors.New("unknown post status code")

// PostStatusFromCode maps a persisted status code back to its PostStatus.
func PostStatusFromCode(code int64) (PostStatus, error) {
	s := PostStatus(code)
	if _, ok := postStatusNames[s]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return s, nil
}

// Statuses is the registry of PostStatus declarations.
var Statuses = status.MustBuild(func(b *status.Builder) {
	// MustBuild panics on any failed declaration.
	_ = b.Declare(NewRecord, "New Record Created.", status.Success)
	_ = b.Declare(UpdatedRecord, "Registration Updated.", status.Success)
	_ = b.Declare(DeletedRecord, "Record Deleted.", status.Success)
	_ = b.Declare(UserInformationCouldNotBeVerified, "User Information Could Not Be Verified", status.Error)
})

// Describe returns the declaration for s.
func Describe(s PostStatus) (status.Declaration, error) {
	return Statuses.Lookup(s)
}

// IsError reports whether s is declared with the Error kind.
func IsError(s PostStatus) bool {
	decl, err := Describe(s)
	return err == nil && decl.Kind.Is(status.Error)
}
