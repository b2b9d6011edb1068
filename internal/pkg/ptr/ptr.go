package ptr

import "github.com/google/uuid"

func To[T any](v T) *T {
	return &v
}

// UUID returns nil for uuid.Nil so optional ids drop out of JSON.
func UUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func UUIDValue(p *uuid.UUID) uuid.UUID {
	if p == nil {
		return uuid.Nil
	}
	return *p
}
