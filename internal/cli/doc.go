// Package cli provides the interactive SportsLink command-line client.
//
// It wires configuration, local storage, the persistence coordinator and the
// remote API clients into an interactive REPL. Typical flow: restore any
// persisted session, start a background expiry watcher, and execute user
// commands.
//
// Key features:
//   - Register / Login (local account store first, remote fallback)
//   - Browse teams, events and players from the sports catalog
//   - Toggle favourites per entity kind, list and clear them
//   - Switch the colour theme
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and Coordinator.StartExpiryWatcher for details.
package cli
