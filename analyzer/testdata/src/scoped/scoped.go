package scoped

type Options struct{ KeyPrefix string }

type TFunc func(key string, args ...any) string

func useTranslation(ns any, opts ...any) TFunc {
	return func(key string, _ ...any) string { return key }
}

func t(key string, args ...any) string { return key }

func page() {
	_ = t("save")
	_ = t("errors.notFound")
	_ = t("home:footer")
	_ = t("home:missing") // want `Translation key "missing" in namespace "home" is used here but missing in the translations file\.`
	_ = t("unknown:save") // want `Translation key "save" in namespace "unknown" is used here`
	_ = t(":save")

	{
		t := useTranslation("home", Options{KeyPrefix: "hero"})
		_ = t("title")
		_ = t("subtitle", 3)
		_ = t("nope") // want `Translation key "hero\.nope" in namespace "home" is used here`
	}

	t := useTranslation([]string{"home", "common"})
	_ = t("footer")
	_ = t("common:save")
	_ = t("save") // want `Translation key "save" in namespace "home" is used here`

	switch {
	case t != nil:
		t := useTranslation("home", Options{})
		_ = t("hero.title")
	}

	if t := useTranslation("common", &Options{KeyPrefix: "errors"}); t != nil {
		_ = t("notFound")
		_ = t("gone") // want `Translation key "errors\.gone" in namespace "common" is used here`
	}
}
