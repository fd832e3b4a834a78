// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/awnumar/memguard"

// Secret holds key material in guarded memory.
//
// The bytes live in a memguard LockedBuffer: they are excluded from swap and
// wiped by Destroy. A Secret is meant to be scoped to one operation or one
// request; call Destroy on every exit path.
type Secret struct {
	buf *memguard.LockedBuffer
}

// NewSecret moves b into guarded memory. The source slice is wiped.
func NewSecret(b []byte) *Secret {
	return &Secret{buf: memguard.NewBufferFromBytes(b)}
}

// Bytes returns a read-only view of the secret. The slice must not be
// retained after Destroy. A destroyed or empty Secret returns nil.
func (s *Secret) Bytes() []byte {
	if !s.IsAlive() {
		return nil
	}
	return s.buf.Bytes()
}

// IsAlive reports whether the secret still holds key material.
func (s *Secret) IsAlive() bool {
	return s != nil && s.buf != nil && s.buf.IsAlive()
}

// Destroy wipes the secret. It is safe to call more than once.
func (s *Secret) Destroy() {
	if s == nil || s.buf == nil {
		return
	}
	s.buf.Destroy()
}
