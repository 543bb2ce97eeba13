package ptrarray_test

import (
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-ptrarray/ptrarray"
	"github.com/LerianStudio/lib-ptrarray/ptrarray/pointers"
)

type item struct {
	Name  string
	Value int
}

func ExampleArray_Emplace() {
	arr := ptrarray.New[item]()
	defer arr.Close()

	arr.Emplace(item{Name: "Object 1", Value: 10})
	arr.Emplace(item{Name: "Object 2", Value: 20})
	arr.Emplace(item{Name: "Object 3", Value: 30})

	fmt.Println(arr.Len())

	got, err := arr.Value(1)
	fmt.Println(err == nil)
	fmt.Println(got.Name, got.Value)

	// Output:
	// 3
	// true
	// Object 2 20
}

func ExampleArray_At() {
	arr := ptrarray.New[item]()
	defer arr.Close()

	arr.Emplace(item{Name: "Object 1", Value: 10})

	_, err := arr.At(10)

	fmt.Println(errors.Is(err, ptrarray.ErrIndexOutOfBounds))
	fmt.Println(err)

	// Output:
	// true
	// index out of bounds: index 10, size 1
}

func ExampleArray_Get() {
	arr := ptrarray.New[item]()
	defer arr.Close()

	arr.Emplace(item{Name: "Object 1", Value: 10})

	fmt.Println(arr.Get(0) != nil)
	fmt.Println(arr.Get(10) == nil)

	// Output:
	// true
	// true
}

func ExampleArray_Add() {
	arr := ptrarray.New[item]()
	defer arr.Close()

	err := arr.Add(pointers.New(item{Name: "Object 1", Value: 10}))
	fmt.Println(err == nil)

	err = arr.Add(nil)
	fmt.Println(errors.Is(err, ptrarray.ErrNilPointer))

	// Output:
	// true
	// true
}

func ExampleArray_Move() {
	src := ptrarray.New[item]()
	src.Emplace(item{Name: "Object 1", Value: 10})
	src.Emplace(item{Name: "Object 2", Value: 20})

	dst := src.Move()
	defer dst.Close()

	fmt.Println(src.IsEmpty())
	fmt.Println(dst.Len())

	// Output:
	// true
	// 2
}
