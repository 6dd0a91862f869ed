package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "got"); templates reference it as {min}, {got}, and so on.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	return expand(t.template(code), data)
}

func (t dictTranslator) template(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type.mismatch":
			return "型が不正です ({want} を期待, 実際 {got})"
		case "str.too_short":
			return "文字列が短すぎます (最小 {min}, 実際 {len})"
		case "str.too_long":
			return "文字列が長すぎます (最大 {max}, 実際 {len})"
		case "str.pattern_mismatch":
			return "文字列がパターン {pattern} に一致しません"
		case "num.not_integer":
			return "整数が必要ですが {got} でした"
		case "num.too_small":
			return "数値 {got} が最小値 {min} を下回っています"
		case "num.too_large":
			return "数値 {got} が最大値 {max} を超えています"
		case "literal.mismatch":
			return "{want} が必要ですが {got} でした"
		case "pattern.mismatch":
			return "値がパターン {pattern} に一致しません"
		case "pattern.invalid":
			return "パターン {pattern} が不正です: {err}"
		case "field.missing":
			return "必須フィールドがありません: {key}"
		case "list.too_short":
			return "配列が短すぎます (最小 {min}, 実際 {len})"
		case "list.too_long":
			return "配列が長すぎます (最大 {max}, 実際 {len})"
		case "oneof.no_match":
			return "値がどの選択肢にも一致しません"
		case "bundle.not_found":
			return "パスが見つかりません: {path}"
		case "bundle.type_mismatch":
			return "{kind} は受け付けられません"
		case "bundle.invalid":
			return "有効なバンドルではありません: {path}"
		case "bundle.open_error":
			return "バンドルを開けません: {err}"
		case "bundle.name_mismatch":
			return "名前 '{name}' がパターンに一致しません"
		case "file.not_found":
			return "ファイルが見つかりません: {rel}"
		case "file.not_file":
			return "ファイルではありません: {rel}"
		case "file.wrong_ext":
			return "拡張子が不正です (.{want} を期待, 実際 .{got})"
		case "json.parse_error":
			return "JSON 解析エラー: {err}"
		case "yaml.parse_error":
			return "YAML 解析エラー: {err}"
		case "dir.not_found":
			return "ディレクトリが見つかりません: {rel}"
		case "dir.not_dir":
			return "ディレクトリではありません: {rel}"
		}
	default: // "en"
		switch code {
		case "type.mismatch":
			return "Expected {want}, got {got}"
		case "str.too_short":
			return "String length {len} is less than minimum {min}"
		case "str.too_long":
			return "String length {len} exceeds maximum {max}"
		case "str.pattern_mismatch":
			return "String does not match pattern {pattern}"
		case "num.not_integer":
			return "Expected integer, got {got}"
		case "num.too_small":
			return "Number {got} is less than minimum {min}"
		case "num.too_large":
			return "Number {got} exceeds maximum {max}"
		case "literal.mismatch":
			return "Expected {want}, got {got}"
		case "pattern.mismatch":
			return "Value does not match pattern {pattern}"
		case "pattern.invalid":
			return "Invalid pattern {pattern}: {err}"
		case "field.missing":
			return "Missing required field: {key}"
		case "list.too_short":
			return "Array length {len} is less than minimum {min}"
		case "list.too_long":
			return "Array length {len} exceeds maximum {max}"
		case "oneof.no_match":
			return "Value does not match {alts}"
		case "bundle.not_found":
			return "Path not found: {path}"
		case "bundle.type_mismatch":
			return "{kind} not accepted"
		case "bundle.invalid":
			return "Not a valid bundle: {path}"
		case "bundle.open_error":
			return "{err}"
		case "bundle.name_mismatch":
			return "Name '{name}' does not match pattern"
		case "file.not_found":
			return "File not found: {rel}"
		case "file.not_file":
			return "Not a file: {rel}"
		case "file.wrong_ext":
			return "Expected .{want}, got .{got}"
		case "json.parse_error":
			return "{err}"
		case "yaml.parse_error":
			return "{err}"
		case "dir.not_found":
			return "Directory not found: {rel}"
		case "dir.not_dir":
			return "Not a directory: {rel}"
		}
	}
	return code
}

// expand substitutes {name} placeholders in tmpl with values from data.
// Placeholders without a matching key are left as-is.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
