package lintrc

// Names of the built-in presets.
const (
	PresetRecommended            = "eslint:recommended"
	PresetAll                    = "eslint:all"
	PresetTypeScriptESLintCompat = "plugin:@typescript-eslint/eslint-recommended"
	PresetTypeScriptRecommended  = "plugin:@typescript-eslint/recommended"
	typescriptPlugin             = "@typescript-eslint"
	typescriptParser             = "@typescript-eslint/parser"
	builtinRuleSetName           = "eslint"
	builtinRuleSetVersion        = "0.1.0"
)

var recommendedRules = []string{
	"constructor-super", "for-direction", "getter-return", "no-async-promise-executor",
	"no-case-declarations", "no-class-assign", "no-compare-neg-zero", "no-cond-assign",
	"no-const-assign", "no-constant-condition", "no-control-regex", "no-debugger",
	"no-delete-var", "no-dupe-args", "no-dupe-class-members", "no-dupe-else-if",
	"no-dupe-keys", "no-duplicate-case", "no-empty", "no-empty-character-class",
	"no-empty-pattern", "no-ex-assign", "no-extra-boolean-cast", "no-extra-semi",
	"no-fallthrough", "no-func-assign", "no-global-assign", "no-import-assign",
	"no-inner-declarations", "no-invalid-regexp", "no-irregular-whitespace",
	"no-loss-of-precision", "no-misleading-character-class", "no-mixed-spaces-and-tabs",
	"no-new-symbol", "no-nonoctal-decimal-escape", "no-obj-calls", "no-octal",
	"no-prototype-builtins", "no-redeclare", "no-regex-spaces", "no-self-assign",
	"no-setter-return", "no-shadow-restricted-names", "no-sparse-arrays",
	"no-this-before-super", "no-undef", "no-unexpected-multiline", "no-unreachable",
	"no-unsafe-finally", "no-unsafe-negation", "no-unsafe-optional-chaining",
	"no-unused-labels", "no-unused-vars", "no-useless-backreference", "no-useless-catch",
	"no-useless-escape", "no-with", "require-yield", "use-isnan", "valid-typeof",
}

// styleRules are the core rules that only eslint:all turns on.
var styleRules = []string{
	"array-element-newline", "arrow-body-style", "callback-return", "camelcase",
	"class-methods-use-this", "complexity", "curly", "default-case", "default-param-last",
	"eqeqeq", "func-style", "function-call-argument-newline", "function-paren-newline",
	"global-require", "id-length", "implicit-arrow-linebreak", "indent",
	"max-classes-per-file", "max-depth", "max-len", "max-lines", "max-lines-per-function",
	"max-params", "max-statements", "multiline-ternary", "newline-per-chained-call",
	"no-await-in-loop", "no-bitwise", "no-confusing-arrow", "no-console", "no-continue",
	"no-empty-function", "no-extra-parens", "no-magic-numbers", "no-mixed-operators",
	"no-new", "no-plusplus", "no-process-env", "no-sync", "no-ternary", "no-undefined",
	"no-use-before-define", "no-var", "no-warning-comments", "object-curly-newline",
	"object-property-newline", "one-var", "padded-blocks", "prefer-const",
	"prefer-named-capture-group", "prefer-rest-params", "prefer-spread", "quote-props",
	"quotes", "require-atomic-updates", "require-await", "semi", "sort-imports", "sort-keys",
}

// typescriptCompatOff are core rules the TypeScript compiler already checks.
var typescriptCompatOff = []string{
	"constructor-super", "getter-return", "no-const-assign", "no-dupe-args",
	"no-dupe-keys", "no-func-assign", "no-import-assign", "no-new-symbol",
	"no-obj-calls", "no-redeclare", "no-setter-return", "no-this-before-super",
	"no-undef", "no-unreachable", "no-unsafe-negation", "valid-typeof",
}

// Builtins returns a fresh rule-set holding the built-in presets.
func Builtins() *BuiltinRuleSet {
	return &BuiltinRuleSet{
		Name:    builtinRuleSetName,
		Version: builtinRuleSetVersion,
		Documents: []*Document{
			{Name: PresetRecommended, Rules: rulesAt("error", recommendedRules)},
			{Name: PresetAll, Rules: rulesAt("error", recommendedRules, styleRules)},
			typescriptCompat(),
			typescriptRecommended(),
		},
	}
}

func rulesAt(level string, lists ...[]string) map[string]any {
	rules := make(map[string]any)
	for _, list := range lists {
		for _, name := range list {
			rules[name] = level
		}
	}
	return rules
}

func typescriptCompat() *Document {
	rules := rulesAt("off", typescriptCompatOff)
	for _, name := range []string{"no-var", "prefer-const", "prefer-rest-params", "prefer-spread"} {
		rules[name] = "error"
	}
	return &Document{Name: PresetTypeScriptESLintCompat, Rules: rules}
}

func typescriptRecommended() *Document {
	rules := map[string]any{
		"camelcase":            "off",
		"no-array-constructor": "off",
		"no-empty-function":    "off",
		"no-unused-vars":       "off",
		"no-use-before-define": "off",
	}
	for name, level := range map[string]string{
		"adjacent-overload-signatures":  "error",
		"ban-ts-ignore":                 "error",
		"ban-types":                     "error",
		"camelcase":                     "error",
		"class-name-casing":             "error",
		"consistent-type-assertions":    "error",
		"explicit-function-return-type": "warn",
		"interface-name-prefix":         "error",
		"member-delimiter-style":        "error",
		"no-array-constructor":          "error",
		"no-empty-function":             "error",
		"no-empty-interface":            "error",
		"no-explicit-any":               "warn",
		"no-inferrable-types":           "error",
		"no-misused-new":                "error",
		"no-namespace":                  "error",
		"no-non-null-assertion":         "warn",
		"no-this-alias":                 "error",
		"no-unused-vars":                "warn",
		"no-use-before-define":          "error",
		"no-var-requires":               "error",
		"prefer-namespace-keyword":      "error",
		"triple-slash-reference":        "error",
		"type-annotation-spacing":       "error",
	} {
		rules[typescriptPlugin+"/"+name] = level
	}
	return &Document{
		Name:          PresetTypeScriptRecommended,
		Parser:        typescriptParser,
		Extends:       []string{PresetTypeScriptESLintCompat},
		ParserOptions: ParserOptions{SourceType: SourceTypeModule},
		Plugins:       []string{typescriptPlugin},
		Rules:         rules,
	}
}
