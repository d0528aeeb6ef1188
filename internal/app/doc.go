// Package app provides the application service layer.
//
// Orchestrates use cases: user registration and login, message sending with
// sentiment labelling, conversation resolution and history queries. Sits
// between HTTP handlers and domain repositories. Depends on domain interfaces,
// not concrete implementations.
package app
