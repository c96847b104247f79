package basic

func t(key string, args ...any) string { return key }

const recordsKey = "records." + "contracts"

type catalog struct{}

func (catalog) t(key string) string { return key }

func render(pizza string) {
	_ = t("pizza")
	_ = t("records.contracts")
	_ = t(recordsKey)
	_ = t(pizza)              // want "Translation keys must be string literals"
	_ = t("thisOneIsMissing") // want "Translation key thisOneIsMissing is used here but missing in the translations files."
	_ = t("item", 2)
	_ = t("sizes.1")
	_ = t("sizes.2")              // want `Translation key sizes\.2 is used here`
	_ = t("records.missing.deep") // want `Translation key records\.missing\.deep is used here`
	_ = t("errors:notFound")      // want `Translation key errors:notFound is used here`

	var c catalog
	_ = c.t("thisOneIsMissing")
}
