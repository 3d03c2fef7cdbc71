package manifest

// NameFor returns the manifest name for a project materialized from
// templateName into destination. The default destination "." would make a
// meaningless package name, so the template name is used instead; any other
// destination is used verbatim, exactly as the operator typed it. An empty
// destination counts as the default.
func NameFor(templateName, destination string) string {
	if destination == "" || destination == DefaultDestination {
		return templateName
	}
	return destination
}
