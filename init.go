package gendy

import (
	"fmt"
	"reflect"
)

// An Initer needs to know the stream parameters before it can render.
type Initer interface {
	InitAudio(Params)
}

type Params struct {
	SampleRate float64
}

func (p *Params) InitAudio(q Params) { *p = q }

// Init walks x, calling InitAudio on every Initer it reaches through
// pointers, struct fields and slice elements.  It panics if it finds a value
// whose pointer, but not the value itself, is an Initer, since that value
// cannot be initialized in place.
func Init(x any, p Params) {
	if err := initVal(reflect.ValueOf(x), p); err != nil {
		panic("gendy.Init: " + err.Error())
	}
}

var initerType = reflect.TypeOf((*Initer)(nil)).Elem()

func initVal(v reflect.Value, p Params) (err error) {
	if !v.IsValid() || v.Kind() == reflect.Pointer && v.IsNil() || !v.CanInterface() {
		return nil
	}

	v = reflect.Indirect(v)
	if v.CanAddr() && v.Type().Name() != "" && v.Kind() != reflect.Interface {
		v = v.Addr()
	}
	if x, ok := v.Interface().(Initer); ok {
		x.InitAudio(p)
		return nil
	}

	defer func() {
		if err != nil {
			err = fmt.Errorf("%w\n\t%v", err, v.Type())
		}
	}()
	if t := v.Type(); reflect.PointerTo(t).Implements(initerType) {
		return fmt.Errorf("%s does not implement gendy.Initer but *%s does; Init stack:", t, t)
	}

	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Interface:
		return initVal(v.Elem(), p)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err = initVal(v.Field(i), p); err != nil {
				return err
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err = initVal(v.Index(i), p); err != nil {
				return err
			}
		}
	}
	return nil
}
