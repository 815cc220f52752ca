package models

// Json documents the value domain of the backend's JSON columns and
// payloads: string, number, boolean, null, object, or array, recursively.
// Handlers bind to the concrete row types instead of this alias; it exists
// to name the wire contract the row shapes are serialized against.
type Json = interface{}
