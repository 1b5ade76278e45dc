// Package ports defines interfaces between layers in the hexagonal architecture.
// API ports are implemented by the application layer (in-process) or by the
// ACL client (remote) and called by side-effect routines and HTTP handlers.
// Repository ports are implemented by storage adapters and called by the
// application layer.
package ports
