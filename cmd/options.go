package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"configuration YAML path (default ~/.grocery/config.yaml)"`

	Shop    *ShopCmd    `command:"shop"    description:"Relocate the demonstration cart, ring it up and check the amount due"`
	List    *ListCmd    `command:"list"    description:"Load, edit and print a grocery list"`
	Lookup  *LookupCmd  `command:"lookup"  description:"Show one catalog entry"`
	Catalog *CatalogCmd `command:"catalog" description:"List catalog entries"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "shop":
		o.Shop = &ShopCmd{}
	case "list":
		o.List = &ListCmd{}
	case "lookup":
		o.Lookup = &LookupCmd{}
	case "catalog":
		o.Catalog = &CatalogCmd{}
	}
}
