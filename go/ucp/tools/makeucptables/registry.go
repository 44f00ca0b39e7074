/*
Copyright 2025 The UCPTables Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

// The curated input lists. The three lists must be pairwise disjoint and
// contain only letters, '_' and '&'; both properties are verified by the
// test suite rather than at generation time.

var scriptNames = []string{
	"Arabic", "Armenian", "Bengali", "Bopomofo", "Braille", "Buginese", "Buhid", "Canadian_Aboriginal",
	"Cherokee", "Common", "Coptic", "Cypriot", "Cyrillic", "Deseret", "Devanagari", "Ethiopic", "Georgian",
	"Glagolitic", "Gothic", "Greek", "Gujarati", "Gurmukhi", "Han", "Hangul", "Hanunoo", "Hebrew", "Hiragana",
	"Inherited", "Kannada", "Katakana", "Kharoshthi", "Khmer", "Lao", "Latin", "Limbu", "Linear_B", "Malayalam",
	"Mongolian", "Myanmar", "New_Tai_Lue", "Ogham", "Old_Italic", "Old_Persian", "Oriya", "Osmanya", "Runic",
	"Shavian", "Sinhala", "Syloti_Nagri", "Syriac", "Tagalog", "Tagbanwa", "Tai_Le", "Tamil", "Telugu", "Thaana",
	"Thai", "Tibetan", "Tifinagh", "Ugaritic", "Yi",

	// New for Unicode 5.0
	"Balinese", "Cuneiform", "Nko", "Phags_Pa", "Phoenician",

	// New for Unicode 5.1
	"Carian", "Cham", "Kayah_Li", "Lepcha", "Lycian", "Lydian", "Ol_Chiki", "Rejang", "Saurashtra", "Sundanese", "Vai",
}

var categoryNames = []string{
	"Cc", "Cf", "Cn", "Co", "Cs", "Ll", "Lm", "Lo", "Lt", "Lu",
	"Mc", "Me", "Mn", "Nd", "Nl", "No", "Pc", "Pd", "Pe", "Pf", "Pi", "Po", "Ps",
	"Sc", "Sk", "Sm", "So", "Zl", "Zp", "Zs",
}

var generalCategoryNames = []string{"C", "L", "M", "N", "P", "S", "Z"}
