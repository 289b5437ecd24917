package typesheader_test

import (
	"fmt"

	"github.com/git-pkgs/typesheader"
)

func ExampleParseHeaderOrFail() {
	src := `// Type definitions for non-npm package left-pad 1.3
// Project: https://github.com/left-pad/left-pad
// Definitions by: Some Body <https://github.com/somebody/>
// Definitions: https://github.com/DefinitelyTyped/DefinitelyTyped
// Minimum TypeScript Version: 4.4
`
	h, err := typesheader.ParseHeaderOrFail(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h.LibraryName, h.LibraryMajorVersion, h.LibraryMinorVersion, h.NonNpm)
	fmt.Println(h.TypeScriptVersion)
	fmt.Println(h.Contributors[0].GithubUsername, h.Contributors[0].URL)
	// Output:
	// left-pad 1 3 true
	// 4.4
	// somebody https://github.com/somebody
}

func ExampleMakeTypesVersionsForPackageJSON() {
	tv, err := typesheader.MakeTypesVersionsForPackageJSON([]typesheader.Version{"4.6", "4.2"})
	if err != nil {
		fmt.Println(err)
		return
	}
	data, _ := tv.MarshalJSON()
	fmt.Println(string(data))
	// Output:
	// {"<4.3.0-0":{"*":["ts4.2/*"]},"<4.7.0-0":{"*":["ts4.6/*"]}}
}

func ExampleTagsToUpdate() {
	tags, err := typesheader.TagsToUpdate("4.8")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tags)
	// Output:
	// [ts4.8 ts4.9 ts5.0 latest]
}
