package merged

func t(key string, args ...any) string { return key }

func render() {
	_ = t("home:hero.title")
	_ = t("common:save")
	_ = t("footer")
	_ = t("x:nope")    // want "Translation key nope is used here but missing in the translations files."
	_ = t("hero.nope") // want `Translation key hero\.nope is used here`
}
