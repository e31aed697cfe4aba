// Package descriptor reads project descriptors and turns them into a
// maven.Build.
//
// A descriptor is a YAML (.yaml, .yml) or TOML (.toml) file that mirrors the
// build model: project identity and metadata, properties, dependencies, bills
// of materials, plugins with free-form configuration trees, resources,
// repositories, profiles and distribution management. It may also name the
// conventions that should customise the build before it is written.
//
// Plugin configuration keeps document order in YAML. TOML tables are
// unordered, so their keys are sorted; use an array of tables when the order
// of sibling elements matters.
package descriptor
