package parser

// DocumentStats contains statistical information about an OAS document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	WebhookCount   int // Number of webhooks (OAS 3.1+)
	SchemaCount    int // Number of component schemas
	ComponentCount int // Number of entries across all component registries
	TagCount       int // Number of top-level tags
}

// GetDocumentStats returns statistics for a parsed OAS document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.PathCount = len(doc.Paths)
	for _, pathItem := range doc.Paths {
		stats.OperationCount += len(pathItem.Operations())
	}
	stats.WebhookCount = len(doc.Webhooks)
	stats.TagCount = len(doc.Tags)

	if c := doc.Components; c != nil {
		stats.SchemaCount = len(c.Schemas)
		stats.ComponentCount = len(c.Schemas) +
			len(c.Responses) +
			len(c.Parameters) +
			len(c.Examples) +
			len(c.RequestBodies) +
			len(c.Headers) +
			len(c.SecuritySchemes) +
			len(c.Links) +
			len(c.Callbacks) +
			len(c.PathItems)
	}

	return stats
}
