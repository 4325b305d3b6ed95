package jsni

import (
	"fmt"

	"github.com/dhamidi/jex/java"
)

// Status tracks how far a compilation unit made it through loading.
type Status string

const (
	StatusNew      Status = "new"
	StatusCompiled Status = "compiled"
	StatusError    Status = "error"
)

// Unit is one Java source file prepared for extraction. Source text is
// fetched on demand and cached only while the unit's methods are being
// located.
type Unit struct {
	Path   string
	Status Status
	File   *java.File

	load func() (string, error)
	src  string
	has  bool

	methods []*Method
	set     bool
}

// NewUnit wraps a scanned file. load fetches the raw source text and
// is called at most once per extraction pass.
func NewUnit(path string, file *java.File, load func() (string, error)) *Unit {
	return &Unit{Path: path, Status: StatusCompiled, File: file, load: load}
}

// Source returns the unit's text, fetching it on first use.
func (u *Unit) Source() (string, error) {
	if !u.has {
		src, err := u.load()
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", u.Path, err)
		}
		u.src = src
		u.has = true
	}
	return u.src, nil
}

func (u *Unit) discardSource() {
	u.src = ""
	u.has = false
}

// SetMethods fills the unit's descriptor slot. The slot is written
// exactly once; a second write is a bug in the caller.
func (u *Unit) SetMethods(methods []*Method) {
	if u.set {
		panic(fmt.Sprintf("jsni: methods already collected for %s", u.Path))
	}
	u.methods = methods
	u.set = true
}

// Methods returns the collected descriptors, or nil before collection.
func (u *Unit) Methods() []*Method {
	return u.methods
}

// Collected reports whether the descriptor slot has been written.
func (u *Unit) Collected() bool {
	return u.set
}
