// Package provider abstracts the embedding and chat-completion model
// behind a two-operation capability interface, with an OpenAI-compatible
// HTTP implementation for live use and a deterministic mock for offline
// and test use. Implementations are selected by configuration, never by
// runtime type inspection.
package provider
