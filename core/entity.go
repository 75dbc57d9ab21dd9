package core

// Entity is a unique world identifier, 0 is never issued
type Entity uint64
