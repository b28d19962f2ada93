// Package xmlcfg implements the XML config extraction the operation
// generator feeds to the runtime XmlBuilder helper (spec §4.7.1).
//
// [Extract] walks the shape graph starting from an operation input's
// payload shape and returns a pruned map of shape name to [Descriptor],
// transitively closed over every shape reachable through structure members,
// list elements, and map keys/values. A synthetic root entry records the
// payload shape's name, wire element name, and namespace URI, mirroring
// what the runtime XmlBuilder needs to start serialization.
package xmlcfg
