package store

type RelationTypeUsage struct {
	Name  string
	Count int
}

type RelationExample struct {
	From       string
	To         string
	Type       string
	SourceFile string
}
