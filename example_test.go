package keyedList_test

import (
	"fmt"

	"github.com/hneemann/keyedList"
	"github.com/hneemann/keyedList/fieldRec"
)

func ExampleList() {
	l, _ := keyedList.FromSlice("siteId", []*fieldRec.Record{
		fieldRec.New(2).Set("siteId", "56").Set("name", "site3"),
		fieldRec.New(2).Set("siteId", "78").Set("name", "site4"),
	})

	l.Push(fieldRec.New(2).Set("siteId", "34").Set("name", "site2"))

	s, _ := l.Find("34")
	fmt.Println(s)
	fmt.Println(l.IndexOfKey("34"))
	fmt.Println(l)

	// Output:
	// {siteId:34, name:site2}
	// 2
	// [{siteId:56, name:site3}, {siteId:78, name:site4}, {siteId:34, name:site2}]
}

func ExampleList_Update() {
	l, _ := keyedList.FromSlice("siteId", []*fieldRec.Record{
		fieldRec.New(2).Set("siteId", "56").Set("name", "site3"),
	})

	l.Update(fieldRec.New(2).Set("siteId", "56").Set("name", "renamed"))

	fmt.Println(l)
	// Output:
	// [{siteId:56, name:renamed}]
}
