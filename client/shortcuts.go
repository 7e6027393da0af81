package client

import "context"

// API is shorthand for NewClient(token).API(ctx, kind, target, opts...).
func API(ctx context.Context, kind Kind, target, token string, opts ...RequestOption) (any, error) {
	return NewClient(token).API(ctx, kind, target, opts...)
}

// Article is shorthand for NewClient(token).Article(ctx, target, opts...).
func Article(ctx context.Context, target, token string, opts ...RequestOption) (any, error) {
	return API(ctx, KindArticle, target, token, opts...)
}

// Frontpage is shorthand for NewClient(token).Frontpage(ctx, target, opts...).
func Frontpage(ctx context.Context, target, token string, opts ...RequestOption) (any, error) {
	return API(ctx, KindFrontpage, target, token, opts...)
}

// Product is shorthand for NewClient(token).Product(ctx, target, opts...).
func Product(ctx context.Context, target, token string, opts ...RequestOption) (any, error) {
	return API(ctx, KindProduct, target, token, opts...)
}

// Image is shorthand for NewClient(token).Image(ctx, target, opts...).
func Image(ctx context.Context, target, token string, opts ...RequestOption) (any, error) {
	return API(ctx, KindImage, target, token, opts...)
}

// Analyze is shorthand for NewClient(token).Analyze(ctx, target, opts...).
func Analyze(ctx context.Context, target, token string, opts ...RequestOption) (any, error) {
	return API(ctx, KindAnalyze, target, token, opts...)
}

// Classify is an alias for Analyze.
func Classify(ctx context.Context, target, token string, opts ...RequestOption) (any, error) {
	return Analyze(ctx, target, token, opts...)
}
