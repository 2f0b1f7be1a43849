package markdown

import "errors"

var (
	// ErrConvertFailed indicates the markdown source could not be converted to HTML.
	ErrConvertFailed = errors.New("markdown: conversion failed")

	// ErrLayoutFailed indicates the layout template could not be executed.
	ErrLayoutFailed = errors.New("markdown: layout execution failed")
)
