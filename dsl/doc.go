// Package dsl builds pollyskema schemas and field types.
//
// Overview
//   - Builder API: Model("Voice").Field("id", String()).Alias("Id").Required() ... MustBuild().
//   - Primitives: String()/Bool()/Int()/Float()/Enum(...)/Any().
//   - Wire types: Time() accepts RFC3339 text or epoch seconds, Duration() ISO-8601 text.
//   - Containers: ArrayOf(elem), MapOf(elem), Object(schema) for nested models.
//   - Constraints chain on any Adapter: Nullable(), Min/Max, MinLen/MaxLen, Refine.
//
// Error model
//   - Adapters return pollyskema.Issues located at "/" for the value itself;
//     containers rebase child issues under the element path (/voices/2/id).
//   - Containers keep going after a failing element so every issue is reported.
//
// Example
//
//	var Voice = dsl.Model("Voice").
//	    Field("id", dsl.String()).Alias("Id").Required().
//	    Field("gender", dsl.Enum("Female", "Male")).Alias("Gender").
//	    Field("supported_engines", dsl.ArrayOf(dsl.Enum("standard", "neural"))).Alias("SupportedEngines").
//	    MustBuild()
package dsl
