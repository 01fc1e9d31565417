// Package model defines murmur's in-memory domain types: users, chats,
// messages and stories. Nothing here is persisted; collections are owned by
// the state package and replaced wholesale on every transition.
package model
