package imaging

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func succeeding(method Method, out []byte) Processor {
	return ProcessorFunc(func(_ context.Context, _ Request) (Result, error) {
		return Result{Image: out, Method: method, Succeeded: true}, nil
	})
}

func failing(err error) Processor {
	return ProcessorFunc(func(_ context.Context, _ Request) (Result, error) {
		return Result{}, err
	})
}

type countingProcessor struct {
	inner Processor
	calls int
}

func (p *countingProcessor) Process(ctx context.Context, req Request) (Result, error) {
	p.calls++
	return p.inner.Process(ctx, req)
}

func TestChainPrefersService(t *testing.T) {
	chain := NewChain(
		WithService(succeeding(MethodService, []byte("cutout"))),
		WithModel(succeeding(MethodModel, []byte("model"))),
	)

	res, err := chain.Process(context.Background(), Request{Image: []byte("src")})
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != MethodService || !res.Succeeded {
		t.Fatalf("result = %+v", res)
	}
	if !bytes.Equal(res.Image, []byte("cutout")) {
		t.Fatalf("image = %q", res.Image)
	}
}

func TestChainFallsBackToModel(t *testing.T) {
	chain := NewChain(
		WithService(failing(errors.New("service unavailable"))),
		WithModel(succeeding(MethodModel, []byte("model"))),
	)

	res, err := chain.Process(context.Background(), Request{Image: []byte("src")})
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != MethodModel {
		t.Fatalf("method = %q, want model", res.Method)
	}
}

func TestChainBulkNeverUsesModel(t *testing.T) {
	model := &countingProcessor{inner: succeeding(MethodModel, []byte("model"))}
	chain := NewChain(
		WithService(failing(errors.New("service unavailable"))),
		WithModel(model),
	)

	res, err := chain.Process(context.Background(), Request{Image: []byte("src"), Bulk: true})
	if err != nil {
		t.Fatal(err)
	}
	if model.calls != 0 {
		t.Fatalf("bulk path invoked the model %d times", model.calls)
	}
	if res.Method != MethodPassthrough {
		t.Fatalf("method = %q, want passthrough", res.Method)
	}
	if !bytes.Equal(res.Image, []byte("src")) {
		t.Fatal("passthrough must return the original image")
	}
	if res.Succeeded {
		t.Fatal("passthrough result must not claim success")
	}
}

func TestChainEmptyIsPassthrough(t *testing.T) {
	res, err := NewChain().Process(context.Background(), Request{Image: []byte("src")})
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != MethodPassthrough || !bytes.Equal(res.Image, []byte("src")) {
		t.Fatalf("result = %+v", res)
	}
}

func TestChainHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain := NewChain(WithService(succeeding(MethodService, nil)))
	if _, err := chain.Process(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	chain = NewChain(WithService(failing(context.DeadlineExceeded)))
	if _, err := chain.Process(context.Background(), Request{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestCachedNeverReprocessesSameKey(t *testing.T) {
	inner := &countingProcessor{inner: succeeding(MethodService, []byte("out"))}
	cached := NewCached(inner)

	for i := 0; i < 3; i++ {
		res, err := cached.Process(context.Background(), Request{Image: []byte("src"), Key: "photo-1"})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(res.Image, []byte("out")) {
			t.Fatalf("image = %q", res.Image)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("inner called %d times, want 1", inner.calls)
	}
	if cached.Len() != 1 {
		t.Fatalf("cache size = %d", cached.Len())
	}
}

func TestCachedDistinctKeysProcessSeparately(t *testing.T) {
	inner := &countingProcessor{inner: succeeding(MethodService, []byte("out"))}
	cached := NewCached(inner)

	cached.Process(context.Background(), Request{Key: "a"})
	cached.Process(context.Background(), Request{Key: "b"})
	if inner.calls != 2 {
		t.Fatalf("inner called %d times, want 2", inner.calls)
	}
}

func TestCachedEmptyKeyBypassesCache(t *testing.T) {
	inner := &countingProcessor{inner: succeeding(MethodService, []byte("out"))}
	cached := NewCached(inner)

	cached.Process(context.Background(), Request{})
	cached.Process(context.Background(), Request{})
	if inner.calls != 2 {
		t.Fatalf("inner called %d times, want 2", inner.calls)
	}
	if cached.Len() != 0 {
		t.Fatal("empty keys must not populate the cache")
	}
}

func TestCachedErrorIsNotCached(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	inner := ProcessorFunc(func(_ context.Context, _ Request) (Result, error) {
		calls++
		if calls == 1 {
			return Result{}, boom
		}
		return Result{Image: []byte("ok"), Method: MethodService, Succeeded: true}, nil
	})
	cached := NewCached(inner)

	if _, err := cached.Process(context.Background(), Request{Key: "k"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	res, err := cached.Process(context.Background(), Request{Key: "k"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Succeeded {
		t.Fatal("retry after error should reprocess")
	}
}
