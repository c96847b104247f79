package skipped

func t(key string, args ...any) string { return key }

func render(key string) {
	_ = t(key)
	_ = t("nowhere:atAll")
	_ = t("save")
	_ = t("missing") // want `Translation key "missing" in namespace "common" is used here`
}
