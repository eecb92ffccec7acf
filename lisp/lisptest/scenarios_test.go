package lisptest_test

import (
	"testing"

	"github.com/howerj/liblisp-go/lisp/lisptest"
)

func TestConcreteScenarios(t *testing.T) {
	lisptest.Run(t, lisptest.Suite{
		"arithmetic": {
			{Input: "(+ 1 2 3)", Want: "6"},
		},
		"define and apply": {
			{Input: "(define sq (lambda (x) (* x x)))", Want: "(lambda (x) (* x x))"},
			{Input: "(sq 7)", Want: "49"},
		},
		"if with quote branches": {
			{Input: "(if (= 2 3) (quote yes) (quote no))", Want: "no"},
		},
		"begin with define and set": {
			{Input: "(begin (define c 0) (set c 5) c)", Want: "5"},
		},
		"lambda consing args": {
			{Input: "((lambda (x y) (cons x y)) 1 (quote (2 3)))", Want: "(1 2 3)"},
		},
		"reverse a quoted list": {
			{Input: "(reverse (quote (a b c)))", Want: "(c b a)"},
		},
	})
}
