// Package types declares the speech API models on top of pollyskema.
//
// Every schema uses snake_case internal names and the API's PascalCase wire
// names as aliases, so responses parse as received and requests serialize
// with ToJSON(ByAlias). Typed structs mirror the schemas through `polly`
// tags for callers that prefer static types over Model.Get.
package types
