package literal

func t(key string, args ...any) string { return key }

const greeting = "hello"

func render(name string) {
	_ = t("not.in.any.dictionary")
	_ = t(greeting)
	_ = t(name)          // want "Translation keys must be string literals"
	_ = t("a" + name)    // want "Translation keys must be string literals"
	_ = t(("parenthesised"))
}
