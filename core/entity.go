package core

// Entity is a world-unique identifier, 0 is never issued and means "none"
type Entity uint64
