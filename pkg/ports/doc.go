/*
Package ports defines the driven ports (interfaces) for the Tendril engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various definition sources and run storage
backends.

# Key Interfaces

  - DefinitionLoader: Responsible for loading Machine definitions (e.g.,
    from a library directory or memory).
  - RunStore: Responsible for persisting and loading finished Runs.
  - Simulator: The engine surface consumed by boundary adapters (HTTP, MCP).
*/
package ports
