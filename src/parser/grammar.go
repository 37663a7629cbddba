package parser

type query struct {
	Clauses []*clause `parser:"@@+"`
}

type clause struct {
	Match  *matchClause  `parser:"  @@"`
	Where  *whereClause  `parser:"| @@"`
	With   *withClause   `parser:"| @@"`
	Delete *deleteClause `parser:"| @@"`
	Return *returnClause `parser:"| @@"`
	Order  *orderClause  `parser:"| @@"`
	Skip   *skipClause   `parser:"| @@"`
	Limit  *limitClause  `parser:"| @@"`
}

type matchClause struct {
	Optional bool         `parser:"@\"OPTIONAL\"?"`
	Pattern  *patternExpr `parser:"\"MATCH\" @@"`
}

type patternExpr struct {
	Elements []*patternElement `parser:"@@ (\",\" @@)*"`
}

type patternElement struct {
	Left  *nodePattern `parser:"@@"`
	Rel   *relPattern  `parser:"( @@"`
	Right *nodePattern `parser:"  @@ )?"`
}

type nodePattern struct {
	Variable string   `parser:"\"(\" @Ident?"`
	Labels   []string `parser:"(\":\" @(Ident | QuotedIdent))* \")\""`
}

type relPattern struct {
	Incoming bool     `parser:"( @\"<-\" | \"-\" ) \"[\""`
	Variable string   `parser:"@Ident?"`
	Types    []string `parser:"(\":\" @(Ident | QuotedIdent))* \"]\""`
	Outgoing bool     `parser:"( @\"->\" | \"-\" )"`
}

type whereClause struct {
	Condition *orCondition `parser:"\"WHERE\" @@"`
}

type orCondition struct {
	First *andCondition   `parser:"@@"`
	Rest  []*andCondition `parser:"(\"OR\" @@)*"`
}

type andCondition struct {
	First *unaryCondition   `parser:"@@"`
	Rest  []*unaryCondition `parser:"(\"AND\" @@)*"`
}

type unaryCondition struct {
	Not   *unaryCondition `parser:"  \"NOT\" @@"`
	Group *orCondition    `parser:"| \"(\" @@ \")\""`
	Atom  *atomCondition  `parser:"| @@"`
}

type atomCondition struct {
	Left   *primaryExpr `parser:"@@"`
	IsNull *isNullTail  `parser:"( @@"`
	Op     *string      `parser:"| @(\"=\" | \"<>\" | \"!=\" | \"<=\" | \">=\" | \"<\" | \">\")"`
	Right  *primaryExpr `parser:"  @@ )?"`
}

type isNullTail struct {
	Negated bool `parser:"\"IS\" @\"NOT\"? \"NULL\""`
}

type primaryExpr struct {
	Function *functionCall   `parser:"  @@"`
	Property *propertyAccess `parser:"| @@"`
	String   *string         `parser:"| @String"`
	Float    *float64        `parser:"| @Float"`
	Int      *int64          `parser:"| @Int"`
	Bool     *string         `parser:"| @(\"true\" | \"false\")"`
	Variable *string         `parser:"| @(Ident | QuotedIdent)"`
}

type propertyAccess struct {
	Variable string `parser:"@Ident"`
	Property string `parser:"\".\" @Ident"`
}

type functionCall struct {
	Name string         `parser:"@Ident"`
	Args []*primaryExpr `parser:"\"(\" (@@ (\",\" @@)*)? \")\""`
}

type withClause struct {
	Distinct bool          `parser:"\"WITH\" @\"DISTINCT\"?"`
	Items    []*returnItem `parser:"@@ (\",\" @@)*"`
}

type deleteClause struct {
	Detach bool           `parser:"@\"DETACH\"? \"DELETE\""`
	Exprs  []*primaryExpr `parser:"@@ (\",\" @@)*"`
}

type returnClause struct {
	Distinct bool          `parser:"\"RETURN\" @\"DISTINCT\"?"`
	Items    []*returnItem `parser:"@@ (\",\" @@)*"`
}

type returnItem struct {
	Expression *primaryExpr `parser:"@@"`
	Alias      *string      `parser:"(\"AS\" @Ident)?"`
}

type orderClause struct {
	Items []*sortItem `parser:"\"ORDER\" \"BY\" @@ (\",\" @@)*"`
}

type sortItem struct {
	Expression *primaryExpr `parser:"@@"`
	Direction  string       `parser:"@(\"ASC\" | \"DESC\" | \"ASCENDING\" | \"DESCENDING\")?"`
}

type skipClause struct {
	Amount int64 `parser:"\"SKIP\" @Int"`
}

type limitClause struct {
	Amount int64 `parser:"\"LIMIT\" @Int"`
}
