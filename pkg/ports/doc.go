/*
Package ports defines the driven ports (interfaces) of the onboarding engine.

These interfaces decouple the flow controller from the UI shell that displays
steps and from the sources step tables are read from.

# Key Interfaces

  - Host: Displays step views, plays transitions and receives the dismiss signal.
  - TableLoader: Supplies the ordered step table (in memory, YAML or JSON files).
  - TransitionLoader: Supplies a transition table to override the canonical one.
*/
package ports
