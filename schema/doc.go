//Package schema holds the fixed positions of the RCE model's text formats: the
//value lines of params_ver2.in and the column layout of time.out and profile.out.
//A change in the model's formats should only require editing this package.
package schema
