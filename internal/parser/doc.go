// Package parser reads a pinned solc version from project files in JSON,
// YAML, TOML or raw text form, so the compiler version does not have to be
// typed by hand. The usual source is foundry.toml; compiled Foundry
// artifacts (JSON) and plain ".solc-version" style files work as well.
package parser
