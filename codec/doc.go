// Package codec decodes JSON and YAML documents into value trees and encodes
// them back, keeping mapping keys in document order.
//
// Format selection follows file names: ".yml" and ".yaml" mean YAML, as does
// content that opens with a "---" document marker; everything else is JSON.
// JSON input is checked strictly before it is parsed, so a ".json" file that
// only happens to be valid YAML is rejected.
//
//	v, err := codec.ReadFile("openapi/paths.yaml")
//	if err != nil {
//		return err
//	}
//	out, err := codec.Encode(v, codec.FormatJSON)
package codec
